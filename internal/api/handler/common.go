package handler

import (
	"Chirper/internal/pkg/response"
	"Chirper/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

// parseIdParam 路径 id 解析，非法时直接写失败响应
func parseIdParam(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return 0, false
	}
	return id, true
}
