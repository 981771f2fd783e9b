package controllers

import (
	"errors"
	"github.com/AngeloGiacco/cid-moreira/application/ports/inbound"
	"github.com/AngeloGiacco/cid-moreira/application/ports/outbound"
	"github.com/AngeloGiacco/cid-moreira/domain"
	"github.com/AngeloGiacco/cid-moreira/infrastructure/gin_interface/dto"
	"github.com/gin-gonic/gin"
	"net/http"
)

type VoiceMessagesController interface {
	CreateVoiceMessage(c *gin.Context)
	GetMessage(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type voiceMessagesController struct {
	logger         outbound.LoggerPort
	messageCreator inbound.VoiceMessageCreatorPort
	messageReader  inbound.MessageReaderPort
}

func NewVoiceMessagesController(logger outbound.LoggerPort, messageCreator inbound.VoiceMessageCreatorPort,
	messageReader inbound.MessageReaderPort) VoiceMessagesController {
	return &voiceMessagesController{
		logger:         logger,
		messageCreator: messageCreator,
		messageReader:  messageReader,
	}
}

func (v *voiceMessagesController) CreateVoiceMessage(c *gin.Context) {
	var createRequest dto.CreateVoiceMessageRequest
	if err := c.ShouldBindJSON(&createRequest); err != nil {
		requestErr := &domain.RequestError{Cause: err}
		c.JSON(http.StatusBadRequest, gin.H{"error": requestErr.Error()})
		return
	}

	passageType := domain.PassageType(createRequest.PassageType)
	if passageType == "" {
		passageType = domain.PassageVersiculo
	}

	res, err := v.messageCreator.Create(c.Request.Context(), inbound.CreateVoiceMessageParams{
		Message:      createRequest.Message,
		SenderName:   createRequest.Sender,
		ReceiverName: createRequest.Receiver,
		PhoneNumber:  createRequest.Phone,
		PassageType:  passageType,
	})
	if err != nil {
		v.logger.Error(err, "Failed to create voice message")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.CreateVoiceMessageResponse{
		NoteData: res.Record,
		PublicUrl: dto.PublicUrl{
			PublicUrl: res.PublicURL,
		},
	})
}

func (v *voiceMessagesController) GetMessage(c *gin.Context) {
	shareID := c.Param("shareId")

	record, err := v.messageReader.GetByShareID(c.Request.Context(), shareID)
	if err != nil {
		if errors.Is(err, domain.ErrMessageNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		v.logger.ErrorWithFields(err, "Failed to fetch message record", map[string]interface{}{
			"share_id": shareID,
		})
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, record)
}

func (v *voiceMessagesController) RegisterRoutes(g *gin.Engine) {
	g.POST("/generate-voice", v.CreateVoiceMessage)
	g.GET("/messages/:shareId", v.GetMessage)
}
