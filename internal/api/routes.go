package api

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"careerfair/internal/store"
)

// RegisterRoutes wires every page route onto the engine.
func RegisterRoutes(router *gin.Engine, db *gorm.DB) {
	st := store.New(db)
	pages := NewPageHandler(st)
	candidates := NewCandidateHandler(st)
	hosts := NewHostHandler(st)
	companies := NewCompanyHandler(st)
	recruiters := NewRecruiterHandler(st)

	router.GET("/", pages.Index)
	router.GET("/another", pages.Another)
	router.GET("/login", pages.Login)

	router.GET("/candidate", candidates.ShowForm)
	router.POST("/candidate", candidates.Create)
	router.GET("/findCandidate", candidates.Find)

	router.GET("/host", hosts.ShowForm)
	router.POST("/host", hosts.Create)
	router.GET("/findHost", hosts.Find)
	router.POST("/event", hosts.RegisterEvent)
	router.POST("/invite", hosts.Invite)
	router.GET("/deleteEvent", hosts.DeleteEvent)

	router.GET("/company", companies.ShowForm)
	router.POST("/company", companies.Create)
	router.GET("/findCompany", companies.Find)

	router.GET("/recruiter", recruiters.ShowForm)
	router.POST("/recruiter", recruiters.Create)
	router.GET("/findRecruiter", recruiters.Find)
}
