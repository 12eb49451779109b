package controllers

import (
	"net/http"

	"github.com/NguyenHoangLe0701/NutriCook-sub000/services"

	"github.com/gin-gonic/gin"
)

type NotificationController struct {
	// Nil when the mobile integration is disabled; sends then report zero
	// deliveries instead of failing.
	Push *services.PushService
}

func NewNotificationController(push *services.PushService) *NotificationController {
	return &NotificationController{Push: push}
}

type sendReq struct {
	Audience string `json:"audience"` // all | active | new
	Title    string `json:"title"`
	Message  string `json:"message"`
}

// POST /admin/notifications/send
func (nc *NotificationController) Send(c *gin.Context) {
	var req sendReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	note := services.Notification{Title: req.Title, Message: req.Message}
	if err := note.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if nc.Push == nil {
		c.JSON(http.StatusOK, gin.H{"sent": 0, "available": false})
		return
	}

	var (
		sent int
		err  error
	)
	switch req.Audience {
	case "", "all":
		sent, err = nc.Push.SendToAll(c.Request.Context(), note.Title, note.Message)
	case "active":
		sent, err = nc.Push.SendToActive(c.Request.Context(), note.Title, note.Message)
	case "new":
		sent, err = nc.Push.SendToNew(c.Request.Context(), note.Title, note.Message)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "audience must be all, active or new"})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sent": sent, "available": true})
}
