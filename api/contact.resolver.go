package api

import (
	"fmt"

	"roboadvisor/internal/db/models/postgres/public/model"

	"github.com/gin-gonic/gin"
)

type contactRequest struct {
	ReplyEmail *string `json:"replyEmail"`
	Content    string  `json:"content"`
}

func (h ApiHandler) contact(c *gin.Context) {
	var requestBody contactRequest

	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJson(err, c)
		return
	}

	var err error
	if requestBody.ReplyEmail != nil && len(*requestBody.ReplyEmail) > 320 {
		err = fmt.Errorf("invalid email - too long")
	}
	if len(requestBody.Content) < 5 {
		err = fmt.Errorf("contact message too short - must be > 5 characters")
	}
	if len(requestBody.Content) > 2000 {
		err = fmt.Errorf("contact message too long - must be < 2000 characters")
	}
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	err = h.ContactRepository.Add(h.Db, model.ContactMessage{
		ReplyEmail:     requestBody.ReplyEmail,
		MessageContent: requestBody.Content,
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := map[string]string{
		"message": "ok",
	}

	c.JSON(200, out)
}
