package inits

import (
	"fmt"
	"tag-admin-panel/app/server/models"
	"tag-admin-panel/app/server/utils"

	"github.com/bwmarrin/snowflake"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func DB(conn string, sf *snowflake.Node) (db *gorm.DB, err error) {
	// 打开连接，唯一约束冲突需要翻译成 gorm.ErrDuplicatedKey
	if db, err = gorm.Open(postgres.Open(conn), &gorm.Config{TranslateError: true}); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// 迁移
	if err = Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	// 初始化启动数据
	if err = initData(db, sf); err != nil {
		return nil, fmt.Errorf("failed to init data into database: %w", err)
	}

	// 返回
	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Tag{},
	)
}

func initData(db *gorm.DB, sf *snowflake.Node) (err error) {
	// 查询现有记录数量
	var counter int64

	// 初始化用户
	if err = db.Model(&models.User{}).Count(&counter).Error; err != nil {
		return fmt.Errorf("failed to get user count: %w", err)
	} else if counter == 0 { // 没有任何用户，添加初始用户
		if err = db.Create(&models.User{
			ID:         sf.Generate(),
			UserID:     1,
			Username:   "admin",
			FullName:   utils.P("Administrator"),
			SuperAdmin: 1,
			Password:   utils.HashPassword("password"),
		}).Error; err != nil {
			return fmt.Errorf("failed to create admin user: %w", err)
		}
	}

	// 已有数据或全部导入成功
	return nil
}
