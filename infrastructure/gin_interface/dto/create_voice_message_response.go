package dto

import "github.com/AngeloGiacco/cid-moreira/domain"

type CreateVoiceMessageResponse struct {
	NoteData  *domain.MessageRecord `json:"noteData"`
	PublicUrl PublicUrl             `json:"publicUrl"`
}

type PublicUrl struct {
	PublicUrl string `json:"publicUrl"`
}
