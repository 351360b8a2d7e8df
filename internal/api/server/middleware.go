package server

import (
	"net/http"
	"time"

	"github.com/valyala/fasthttp"
)

func (s *Server) accessLog(next fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		startedAt := time.Now()

		next(ctx)

		s.logger.Debug().
			Bytes("method", ctx.Method()).
			Bytes("path", ctx.Path()).
			Int("status", ctx.Response.StatusCode()).
			Dur("duration", time.Since(startedAt)).
			Msg("request handled")
	}
}

func (s *Server) recoverer(next fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		defer func() {
			if r := recover(); r != nil {
				s.logger.Error().Interface("panic", r).Bytes("path", ctx.Path()).Msg("recovered from panic")
				s.writeJSON(ctx, http.StatusInternalServerError, errorResponse{
					Success: false,
					Message: "internal server error",
				})
			}
		}()

		next(ctx)
	}
}
