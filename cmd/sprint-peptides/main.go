// cmd/sprint-peptides/main.go
package main

import (
	"sprint/internal/app"
	"sprint/internal/appshell"
)

func main() { appshell.Main(app.RunPeptidesContext) }
