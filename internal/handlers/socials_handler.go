package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type SocialLink struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

var socialLinks = []SocialLink{
	{Name: "GitHub", URL: "https://github.com/SYNC-TECH-Solutions"},
	{Name: "Blogger", URL: "https://www.blogger.com/blog/posts/6999647731806944149"},
	{Name: "LinkedIn", URL: "https://www.linkedin.com/company/synctechie/"},
	{Name: "Instagram", URL: "https://www.instagram.com/synctech.ie/"},
	{Name: "Facebook", URL: "https://www.facebook.com/synctech.ie"},
}

func ListSocials(c *gin.Context) {
	c.JSON(http.StatusOK, socialLinks)
}
