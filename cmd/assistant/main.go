package main

import (
	"os"

	"fpt-assistant/core/internal/app"
)

// @title           FPT Admissions Assistant API
// @version         1.0
// @description     Local API of the admissions chatbot core. It streams answers from the remote agent playground and keeps the conversation, sessions and history.
// @host            localhost:8000
// @BasePath        /api
func main() {
	os.Exit(app.Run())
}
