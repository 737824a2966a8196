package dto

// UploadResp 图片上传成功响应
// 未配置存储凭证时返回占位图 URL，message 会带提示
type UploadResp struct {
	Success  bool   `json:"success"`
	URL      string `json:"url"`
	Filename string `json:"filename"`
	Message  string `json:"message,omitempty"`
}
