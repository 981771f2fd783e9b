package dto

type CreateVoiceMessageRequest struct {
	Message     string `json:"message" binding:"required"`
	Sender      string `json:"sender"`
	Receiver    string `json:"receiver"`
	PassageType string `json:"passageType" binding:"omitempty,oneof=salmos oracao versiculo"`
	Phone       string `json:"phone"`
}
