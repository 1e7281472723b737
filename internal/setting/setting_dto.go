package setting

type UpsertSettingRequest struct {
	Title string `json:"title" binding:"required"`
	Value string `json:"value" binding:"required"`
}

type SettingResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Value string `json:"value"`
}
