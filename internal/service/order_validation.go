package service

import (
	"regexp"
	"strings"

	"selling-sisters-api/internal/model"
	"selling-sisters-api/pkg/utils"
)

// 邮箱只做 local@domain.tld 形状检查，真实性由发信失败兜底
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateContactInfo 校验联系人信息，返回面向用户的错误列表
// 空列表即通过。纯函数，错误顺序稳定
func ValidateContactInfo(contact model.ContactInfo) []string {
	var errs []string

	name := strings.TrimSpace(contact.Name)
	if name == "" {
		errs = append(errs, "Name is required")
	} else if len(name) > 100 {
		errs = append(errs, "Name must be 100 characters or less")
	}

	hasEmail := strings.TrimSpace(contact.Email) != ""
	hasPhone := utils.DigitsOnly(contact.Phone) != ""

	if !hasEmail && !hasPhone {
		errs = append(errs, "Email or phone number is required")
	}

	if hasEmail && !emailRe.MatchString(strings.TrimSpace(contact.Email)) {
		errs = append(errs, "Invalid email format")
	}

	if hasPhone && len(utils.DigitsOnly(contact.Phone)) < 10 {
		errs = append(errs, "Phone number must have at least 10 digits")
	}

	return errs
}

// ValidateOrderDetails 按类目分派校验订单明细
// portrait 的参考图是否必传由调用方结合商品配置判断，这里不管
func ValidateOrderDetails(details model.OrderDetails) []string {
	var errs []string

	if details.Type == "" {
		return append(errs, "Order type is required")
	}

	if details.ProductID == "" {
		errs = append(errs, "Product ID is required")
	}
	if details.ProductTitle == "" {
		errs = append(errs, "Product title is required")
	}

	switch details.Type {
	case model.ProductTypeBracelet:
		if len(details.Colors) == 0 {
			errs = append(errs, "At least one color must be selected")
		}

	case model.ProductTypeColoringPage:
		if strings.TrimSpace(details.ColoringInstructions) == "" {
			errs = append(errs, "Coloring instructions are required")
		}

	case model.ProductTypePortrait:
		if strings.TrimSpace(details.SubjectDescription) == "" {
			errs = append(errs, "Subject description is required")
		}

	default:
		errs = append(errs, "Invalid order type")
	}

	return errs
}
