package middleware

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// CORS allows browser clients on other origins to call the JSON API.
func CORS() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		c.Response.Header.Set("Access-Control-Allow-Origin", "*")
		c.Response.Header.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Response.Header.Set("Access-Control-Allow-Headers", "Content-Type, "+RequestIDKey)

		if string(c.Method()) == consts.MethodOptions {
			c.Status(consts.StatusNoContent)
			c.Abort()
			return
		}
		c.Next(ctx)
	}
}
