package service

import "selling-sisters-api/internal/model"

func intPtr(v int) *int { return &v }

// SampleProducts 内置示例目录
// 存储为空或不可用时兜底返回，保证前端开发和演示不依赖任何云端配置
var SampleProducts = []model.Product{
	{
		ProductID:    "BR-0001",
		Type:         model.ProductTypeBracelet,
		Title:        "School Spirit Loom Bracelet",
		ShortDesc:    "Pick your school colors and we'll loom it for you!",
		Status:       model.ProductStatusPublished,
		ThumbnailURL: "https://placehold.co/400x400/EDE9FE/A78BFA?text=Bracelet+1",
		SortOrder:    intPtr(1),
		Bracelet: &model.BraceletInfo{
			Style:        "rubber_band",
			ColorOptions: []string{"red", "blue", "green", "white", "black", "yellow", "orange", "purple", "pink", "gold", "silver"},
			MaxColors:    3,
			Materials:    "Rainbow Loom rubber bands",
		},
	},
	{
		ProductID:    "BR-0002",
		Type:         model.ProductTypeBracelet,
		Title:        "Friendship Bead Bracelet",
		ShortDesc:    "Classic beaded bracelet - perfect for sharing with friends!",
		Status:       model.ProductStatusPublished,
		ThumbnailURL: "https://placehold.co/400x400/FCE7F3/F472B6?text=Bracelet+2",
		SortOrder:    intPtr(2),
		Bracelet: &model.BraceletInfo{
			Style:        "beaded",
			ColorOptions: []string{"red", "blue", "green", "white", "black", "yellow", "pink", "purple", "turquoise", "coral"},
			MaxColors:    5,
			Materials:    "Plastic pony beads on stretchy cord",
		},
	},
	{
		ProductID:    "BR-0003",
		Type:         model.ProductTypeBracelet,
		Title:        "Rainbow Loom Bracelet",
		ShortDesc:    "All the colors of the rainbow in one bracelet!",
		Status:       model.ProductStatusPublished,
		ThumbnailURL: "https://placehold.co/400x400/D1FAE5/34D399?text=Bracelet+3",
		SortOrder:    intPtr(3),
		Bracelet: &model.BraceletInfo{
			Style:        "rubber_band",
			ColorOptions: []string{"red", "orange", "yellow", "green", "blue", "purple"},
			MaxColors:    6,
			Materials:    "Rainbow Loom rubber bands",
		},
	},
	{
		ProductID:    "PT-0001",
		Type:         model.ProductTypePortrait,
		Title:        "Pet Portrait",
		ShortDesc:    "We'll draw your furry friend!",
		Status:       model.ProductStatusPublished,
		ThumbnailURL: "https://placehold.co/400x400/EDE9FE/A78BFA?text=Portrait+1",
		SortOrder:    intPtr(1),
		Portrait: &model.PortraitInfo{
			SizeOptions:    []string{"5x7", "8x10"},
			StyleOptions:   []string{"Realistic", "Cartoon"},
			Turnaround:     "1-2 weeks",
			RequiresUpload: true,
		},
	},
	{
		ProductID:    "PT-0002",
		Type:         model.ProductTypePortrait,
		Title:        "Family Portrait",
		ShortDesc:    "A custom portrait of your family!",
		Status:       model.ProductStatusPublished,
		ThumbnailURL: "https://placehold.co/400x400/FCE7F3/F472B6?text=Portrait+2",
		SortOrder:    intPtr(2),
		Portrait: &model.PortraitInfo{
			SizeOptions:    []string{"8x10", "11x14"},
			StyleOptions:   []string{"Cartoon", "Watercolor"},
			Turnaround:     "2-3 weeks",
			RequiresUpload: true,
		},
	},
	{
		ProductID:    "CP-0001",
		Type:         model.ProductTypeColoringPage,
		Title:        "Sleepy Cat",
		ShortDesc:    "A cozy cat curled up for a nap",
		Status:       model.ProductStatusPublished,
		ThumbnailURL: "https://placehold.co/400x400/FEF3C7/F59E0B?text=Coloring+1",
		SortOrder:    intPtr(1),
		ColoringPage: &model.ColoringPageInfo{
			BookName:          "Animal Friends",
			PageName:          "Sleepy Cat",
			BlankPageURL:      "https://placehold.co/400x400/FEF3C7/F59E0B?text=Coloring+1",
			ColoredExampleURL: "https://placehold.co/400x400/FEF3C7/F59E0B?text=Colored+1",
		},
	},
	{
		ProductID:    "CP-0002",
		Type:         model.ProductTypeColoringPage,
		Title:        "Unicorn Dreams",
		ShortDesc:    "A magical unicorn with rainbow mane",
		Status:       model.ProductStatusPublished,
		ThumbnailURL: "https://placehold.co/400x400/DBEAFE/3B82F6?text=Coloring+2",
		SortOrder:    intPtr(2),
		ColoringPage: &model.ColoringPageInfo{
			BookName:     "Magical Creatures",
			PageName:     "Unicorn Dreams",
			BlankPageURL: "https://placehold.co/400x400/DBEAFE/3B82F6?text=Coloring+2",
		},
	},
	{
		ProductID:    "CP-0003",
		Type:         model.ProductTypeColoringPage,
		Title:        "Flower Garden",
		ShortDesc:    "Beautiful flowers to color your way!",
		Status:       model.ProductStatusPublished,
		ThumbnailURL: "https://placehold.co/400x400/FCE7F3/EC4899?text=Coloring+3",
		SortOrder:    intPtr(3),
		ColoringPage: &model.ColoringPageInfo{
			BookName:          "Nature Scenes",
			PageName:          "Flower Garden",
			BlankPageURL:      "https://placehold.co/400x400/FCE7F3/EC4899?text=Coloring+3",
			ColoredExampleURL: "https://placehold.co/400x400/FCE7F3/EC4899?text=Colored+3",
		},
	},
}
