package http

import (
	"net/http"

	"github.com/fwojciec/grantqa"
	"github.com/gin-gonic/gin"
)

type askRequest struct {
	Question string `json:"question"`
}

type askResponse struct {
	Answer string `json:"answer"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleAsk(c *gin.Context) {
	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Question == "" {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "Question is required"})
		return
	}

	answer, err := s.asker.Ask(c.Request.Context(), req.Question)
	if err != nil {
		if grantqa.ErrorCode(err) == grantqa.EINVALID {
			c.JSON(http.StatusBadRequest, errorResponse{Error: grantqa.ErrorMessage(err)})
			return
		}
		s.logger.Error("ask failed",
			"request_id", c.GetString(requestIDKey),
			"code", grantqa.ErrorCode(err),
			"err", err,
		)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, askResponse{Answer: answer})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
