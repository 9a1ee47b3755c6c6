package handler

import (
	"campusnotes/internal/usecase"
)

var (
	downloadHandler *DownloadHandler
)

func Setup(downloadUseCase *usecase.DownloadUseCase) {
	downloadHandler = NewDownloadHandler(downloadUseCase)
}

func GetDownloadHandler() *DownloadHandler {
	return downloadHandler
}
