package handlers_test

import (
	"net/http"
	"testing"

	"github.com/geocoder89/videomatch/internal/http/handlers"
	"github.com/gin-gonic/gin"
)

type windowQuery struct {
	From  string `form:"from" binding:"required"`
	Limit *int   `form:"limit" binding:"omitempty,min=1,max=50"`
}

type bindErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Details struct {
			Param  string                `json:"param"`
			Reason string                `json:"reason"`
			Fields []handlers.FieldError `json:"fields"`
		} `json:"details"`
	} `json:"error"`
}

func TestBindQueryUsesQueryNames(t *testing.T) {
	r := gin.New()
	r.GET("/window", func(ctx *gin.Context) {
		var q windowQuery
		if !handlers.BindQuery(ctx, &q) {
			return
		}
		ctx.Status(http.StatusNoContent)
	})

	tests := []struct {
		name      string
		target    string
		status    int
		wantParam string
		wantRule  string
	}{
		{"ok", "/window?from=2026-10-18&limit=5", http.StatusNoContent, "", ""},
		{"missing required", "/window?limit=5", http.StatusBadRequest, "from", "required"},
		{"over max", "/window?from=x&limit=51", http.StatusBadRequest, "limit", "max"},
		{"not a number", "/window?from=x&limit=ten", http.StatusBadRequest, "limit", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(r, tt.target)
			if w.Code != tt.status {
				t.Fatalf("status=%d want %d body=%s", w.Code, tt.status, w.Body.String())
			}
			if tt.status != http.StatusBadRequest {
				return
			}

			resp := decode[bindErrorResponse](t, w)
			if resp.Error.Code != "invalid_request" || resp.Error.Details.Param != tt.wantParam {
				t.Fatalf("resp=%+v", resp.Error)
			}
			if tt.wantRule == "" {
				if resp.Error.Details.Reason == "" {
					t.Fatalf("parse errors should carry a reason")
				}
				return
			}
			if len(resp.Error.Details.Fields) == 0 || resp.Error.Details.Fields[0].Rule != tt.wantRule {
				t.Fatalf("fields=%+v", resp.Error.Details.Fields)
			}
			if resp.Error.Details.Fields[0].Message == "" {
				t.Fatalf("field error should include a message")
			}
		})
	}
}
