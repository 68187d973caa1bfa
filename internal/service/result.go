package service

import "net/http"

// Result 為記錄操作的結果：回傳給呼叫端的訊息與 HTTP 狀態碼
type Result struct {
	Message string
	Status  int
}

func ok(msg string) Result            { return Result{Message: msg, Status: http.StatusOK} }
func badRequest(msg string) Result    { return Result{Message: msg, Status: http.StatusBadRequest} }
func notFound(msg string) Result      { return Result{Message: msg, Status: http.StatusNotFound} }
func noContent(msg string) Result     { return Result{Message: msg, Status: http.StatusNoContent} }
func internalError(msg string) Result { return Result{Message: msg, Status: http.StatusInternalServerError} }
