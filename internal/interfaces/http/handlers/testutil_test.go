package handlers

import "relnotes/internal/shared/logger"

func testHandlerLogger() logger.Interface {
	return logger.NewLogger()
}
