package handler

import (
	"cambiazo/internal/usecase"
)

var (
	productHandler  *ProductHandler
	jobHandler      *JobHandler
	favoriteHandler *FavoriteHandler
	reviewHandler   *ReviewHandler
	chatHandler     *ChatHandler
	userHandler     *UserHandler
	searchHandler   *SearchHandler
)

func Setup(
	productUseCase *usecase.ProductUseCase,
	jobUseCase *usecase.JobUseCase,
	favoriteUseCase *usecase.FavoriteUseCase,
	reviewUseCase *usecase.ReviewUseCase,
	chatUseCase *usecase.ChatUseCase,
	userUseCase *usecase.UserUseCase,
	smartSearchUseCase *usecase.SmartSearchUseCase,
) {
	productHandler = NewProductHandler(productUseCase)
	jobHandler = NewJobHandler(jobUseCase)
	favoriteHandler = NewFavoriteHandler(favoriteUseCase)
	reviewHandler = NewReviewHandler(reviewUseCase)
	chatHandler = NewChatHandler(chatUseCase)
	userHandler = NewUserHandler(userUseCase)
	searchHandler = NewSearchHandler(smartSearchUseCase)
}

func GetProductHandler() *ProductHandler {
	return productHandler
}

func GetJobHandler() *JobHandler {
	return jobHandler
}

func GetFavoriteHandler() *FavoriteHandler {
	return favoriteHandler
}

func GetReviewHandler() *ReviewHandler {
	return reviewHandler
}

func GetChatHandler() *ChatHandler {
	return chatHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetSearchHandler() *SearchHandler {
	return searchHandler
}
