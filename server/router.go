package server

import (
	"fmt"
	"html"
	"net/http"

	"github.com/gin-gonic/gin"
)

const successPage = `<!DOCTYPE html>
<html><body>
<h2>Authentication Successful!</h2>
<p>You can close this window and return to your application.</p>
</body></html>`

// InitiateCallbackRouter builds the gin engine for the transient OAuth
// callback listener. deliver is invoked once per redirect with the
// authorization code (or the provider's error).
func InitiateCallbackRouter(deliver func(code, state, errMsg string)) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/callback", func(ctx *gin.Context) {
		if errParam := ctx.Query("error"); errParam != "" {
			desc := ctx.Query("error_description")
			ctx.Data(http.StatusBadRequest, "text/html; charset=utf-8",
				[]byte(fmt.Sprintf("<html><body><h2>Error: %s</h2><p>%s</p></body></html>",
					html.EscapeString(errParam), html.EscapeString(desc))))
			deliver("", ctx.Query("state"), errParam)
			return
		}

		code := ctx.Query("code")
		if code == "" {
			ctx.Data(http.StatusBadRequest, "text/html; charset=utf-8",
				[]byte("<html><body><h2>Error: authorization code not found</h2></body></html>"))
			deliver("", ctx.Query("state"), "authorization code not found")
			return
		}

		ctx.Data(http.StatusOK, "text/html; charset=utf-8", []byte(successPage))
		deliver(code, ctx.Query("state"), "")
	})

	router.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router
}
