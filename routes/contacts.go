package routes

import (
	"kinscreen-backend/handlers/contacts"
	"kinscreen-backend/middleware"

	"github.com/gin-gonic/gin"
)

func ContactsRoutes(r *gin.Engine) {
	r.POST("/contact", contacts.CreateContact)
	r.GET("/contacts", middleware.AdminAuth(), contacts.GetAllContacts)
}
