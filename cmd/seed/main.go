package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/user/movieadmin/internal/config"
	"github.com/user/movieadmin/internal/repository"
)

// 创建初始超级管理员账号，账号密码从环境变量读取。
// 已存在同名账号时拒绝覆盖。
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("未找到 .env 文件，使用系统环境变量")
	}

	name := os.Getenv("ADMIN_NAME")
	password := os.Getenv("ADMIN_PASSWORD")
	if name == "" || password == "" {
		log.Fatal("请设置 ADMIN_NAME 和 ADMIN_PASSWORD 环境变量")
	}
	if len(password) < 6 {
		log.Fatal("ADMIN_PASSWORD 至少需要 6 个字符")
	}

	cfg := config.Load()

	db, err := repository.InitDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("数据库连接失败: %v", err)
	}

	if err := repository.Migrate(db); err != nil {
		log.Fatalf("建表失败: %v", err)
	}

	repos := repository.NewRepositories(db)

	existing, err := repos.Admin.FindByName(name)
	if err != nil {
		log.Fatalf("查询管理员失败: %v", err)
	}
	if existing != nil {
		log.Fatalf("管理员 %s 已存在，拒绝覆盖", name)
	}

	admin, err := repos.Admin.Create(name, password, true, 0)
	if err != nil {
		log.Fatalf("创建管理员失败: %v", err)
	}

	log.Printf("已创建超级管理员 %s (id=%d)", admin.Name, admin.ID)
}
