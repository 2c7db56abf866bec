package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	// PageSize 列表页固定每页条数
	PageSize = 10
)

// Pagination 分页元数据，供模板渲染上一页/下一页
type Pagination struct {
	Total       int64
	CurrentPage int
	TotalPage   int
	Size        int
	HasPrevPage bool
	HasNextPage bool
	PrevPage    int
	NextPage    int
}

// PageFromParam 从路径参数解析页码，缺省或非法时为第 1 页
func PageFromParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.Param("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// Paginate 对 GORM 查询应用 limit/offset 并返回分页元数据
func Paginate[T any](query *gorm.DB, page int, dest *[]T) (Pagination, error) {
	if page < 1 {
		page = 1
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return Pagination{}, err
	}

	offset := (page - 1) * PageSize
	if err := query.Offset(offset).Limit(PageSize).Find(dest).Error; err != nil {
		return Pagination{}, err
	}

	totalPage := int((total + PageSize - 1) / PageSize)

	return Pagination{
		Total:       total,
		CurrentPage: page,
		TotalPage:   totalPage,
		Size:        PageSize,
		HasPrevPage: page > 1,
		HasNextPage: page < totalPage,
		PrevPage:    page - 1,
		NextPage:    page + 1,
	}, nil
}
