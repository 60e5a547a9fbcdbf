package routes

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"capstone-backend/app/apperror"
	"capstone-backend/app/service"
	"capstone-backend/middleware"
	"capstone-backend/utils"
)

// caller identitas user dari context (diisi AuthMiddleware).
func caller(ctx *gin.Context) service.Caller {
	return service.Caller{
		UserID: middleware.CurrentUserID(ctx),
		Role:   middleware.CurrentRole(ctx),
	}
}

// parseUUID error validasi dengan nama field bila format salah.
func parseUUID(raw, field string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperror.NewValidationError("format id salah",
			apperror.FieldError{Field: field, Error: "harus UUID"})
	}
	return id, nil
}

// paramUUID membaca path param berformat UUID; response 400 sudah dikirim bila gagal.
func paramUUID(ctx *gin.Context, name string) (uuid.UUID, bool) {
	id, err := parseUUID(ctx.Param(name), name)
	if err != nil {
		utils.RespondError(ctx, "Parameter tidak valid", err)
		return uuid.Nil, false
	}
	return id, true
}

// bindJSON binding + validasi body; response 400 sudah dikirim bila gagal.
func bindJSON(ctx *gin.Context, out interface{}) bool {
	if err := ctx.ShouldBindJSON(out); err != nil {
		utils.RespondError(ctx, "Input tidak valid", utils.BindError(err))
		return false
	}
	return true
}

// bindOptionalJSON seperti bindJSON, tetapi body kosong (termasuk chunked
// tanpa isi) dianggap input kosong.
func bindOptionalJSON(ctx *gin.Context, out interface{}) bool {
	if ctx.Request.Body == nil || ctx.Request.Body == http.NoBody {
		return true
	}
	if err := ctx.ShouldBindJSON(out); err != nil {
		if errors.Is(err, io.EOF) {
			return true
		}
		utils.RespondError(ctx, "Input tidak valid", utils.BindError(err))
		return false
	}
	return true
}

func ok(ctx *gin.Context, message string, data interface{}) {
	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess(message, data))
}

func created(ctx *gin.Context, message string, data interface{}) {
	ctx.JSON(http.StatusCreated, utils.BuildResponseSuccess(message, data))
}

// pageQuery parameter paging umum (?page=&limit=).
type pageQuery struct {
	Page  int `form:"page" binding:"omitempty,min=1"`
	Limit int `form:"limit" binding:"omitempty,min=1,max=100"`
}

// paged data list beserta metadata paging.
type paged struct {
	Items interface{} `json:"items"`
	Total int64       `json:"total"`
	Page  int         `json:"page"`
	Limit int         `json:"limit"`
}

func newPaged(items interface{}, total int64, q pageQuery) paged {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 20
	}
	return paged{Items: items, Total: total, Page: q.Page, Limit: q.Limit}
}
