package middleware

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS libera todas as origens, métodos e cabeçalhos, com credenciais.
// Com credenciais o navegador trata "*" como literal, então a origem e os
// cabeçalhos pedidos no preflight são devolvidos.
func CORS() gin.HandlerFunc {
	handler := cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool { return true },
		AllowMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodHead,
			http.MethodOptions,
		},
		AllowCredentials: true,
		MaxAge:           10 * time.Minute,
	})

	return func(c *gin.Context) {
		if isPreflight(c) {
			if requested := c.GetHeader("Access-Control-Request-Headers"); requested != "" {
				// cors.Config sem AllowHeaders não sobrescreve este cabeçalho
				c.Header("Access-Control-Allow-Headers", requested)
			}
		}
		handler(c)
	}
}

func isPreflight(c *gin.Context) bool {
	return c.Request.Method == http.MethodOptions &&
		c.GetHeader("Origin") != "" &&
		c.GetHeader("Access-Control-Request-Method") != ""
}
