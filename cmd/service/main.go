// File: cmd/service/main.go
// @title        Conference Admin API
// @version      1.0
// @description  研討會管理後台 API：研討會與使用者的建立、更新、刪除
// @host         localhost:8080
// @BasePath     /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"log"
)

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
