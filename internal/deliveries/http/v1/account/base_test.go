package account

import (
	"os"
	"testing"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"bitbucket.org/Amartha/go-savings-engine/internal/common/log"
	"bitbucket.org/Amartha/go-savings-engine/internal/services/mock"

	"go.uber.org/mock/gomock"
)

type testAccountHelper struct {
	router             *echo.Echo
	mockCtrl           *gomock.Controller
	mockAccountService *mock.MockAccountService
}

func TestMain(m *testing.M) {
	log.InitForTest()
	os.Exit(m.Run())
}

func accountTestHelper(t *testing.T) testAccountHelper {
	t.Helper()

	mockCtrl := gomock.NewController(t)

	mockAccountService := mock.NewMockAccountService(mockCtrl)

	app := echo.New()
	app.Pre(echomiddleware.RemoveTrailingSlash())

	v1Group := app.Group("/api/v1")
	New(v1Group, mockAccountService)

	return testAccountHelper{
		router:             app,
		mockCtrl:           mockCtrl,
		mockAccountService: mockAccountService,
	}
}
