package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sikarir/sikarir-backend/internal/services"
	"github.com/sikarir/sikarir-backend/internal/utils"
)

type QuizHandler struct {
	svc services.QuizService
}

func NewQuizHandler(svc services.QuizService) *QuizHandler {
	return &QuizHandler{svc: svc}
}

type SubmitQuizRequest struct {
	// answers arrive keyed "0".."99"; ordering happens server-side
	Answers map[string]string `json:"answers" binding:"required"`
}

func (h *QuizHandler) Submit(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req SubmitQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "QuizHandler.Submit", "invalid request body", err))
		return
	}

	qr, err := h.svc.Submit(c.Request.Context(), userID, req.Answers)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, qr)
}

func (h *QuizHandler) History(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	out, err := h.svc.History(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": out})
}
