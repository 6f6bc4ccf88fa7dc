package repository

import (
	"fmt"

	"gorm.io/gorm"
)

// ageSecondsExpr 生成“行创建至今的秒数”表达式。
// 秒数必须在查询时由数据库侧计算，人性化格式在 service 层完成。
// sqlite 分支供测试环境使用。
func ageSecondsExpr(db *gorm.DB, column string) string {
	if db.Dialector.Name() == "mysql" {
		return fmt.Sprintf("TIMESTAMPDIFF(SECOND, %s, NOW())", column)
	}
	return fmt.Sprintf("CAST((julianday('now') - julianday(%s)) * 86400 AS INTEGER)", column)
}
