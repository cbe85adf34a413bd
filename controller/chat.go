package controller

import (
	"net/http"

	"reserva_bot/config"
	"reserva_bot/constant"
	"reserva_bot/model"
	"reserva_bot/service/factory"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Chat handles one dialogue turn
func Chat(ctx *gin.Context) {
	var req model.ChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, errModel := factory.GetServiceFactory().NewDialogService().HandleTurn(ctx, req.Message)
	if errModel != nil {
		log.Errorf("Chat error: %v", errModel)
		ctx.JSON(statusForError(errModel), errModel)
		return
	}

	ctx.JSON(http.StatusOK, res)
}

// History returns the most recent messages of the session
func History(ctx *gin.Context) {
	limit := config.GetInstance().GetIntOrDefault(
		config.BotHistoryDisplayLimit, constant.DefaultHistoryDisplayLimit)

	session := factory.GetServiceFactory().NewDialogService().Session()
	ctx.JSON(http.StatusOK, gin.H{
		"session_id": session.ID,
		"messages":   session.HistoryTail(limit),
	})
}

// Reservations returns the reservations visible to the session
func Reservations(ctx *gin.Context) {
	session := factory.GetServiceFactory().NewDialogService().Session()
	ctx.JSON(http.StatusOK, gin.H{
		"session_id":   session.ID,
		"reservations": session.Reservations,
	})
}

func statusForError(errModel *model.Error) int {
	switch errModel.Code {
	case model.ErrorParams, model.ErrorEmptyMessage:
		return http.StatusBadRequest
	case model.ErrorModelUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
