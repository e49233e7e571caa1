package acceptance

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gehnabazaar/gehnabazaar-api/config"
	"github.com/gehnabazaar/gehnabazaar-api/controllers"
	"github.com/gehnabazaar/gehnabazaar-api/models"
	"github.com/gehnabazaar/gehnabazaar-api/services"
	"github.com/gehnabazaar/gehnabazaar-api/tests/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// UploadAcceptanceTestSuite covers the jewelry photo upload flow over HTTP
// with the S3 layer mocked out
type UploadAcceptanceTestSuite struct {
	suite.Suite
	server     *httptest.Server
	db         *gorm.DB
	mockImages *services.MockImageService
	customer   models.User
}

func (suite *UploadAcceptanceTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)

	suite.db = testutil.OpenTestDB(suite.T())
	config.SetDB(suite.db)

	suite.mockImages = services.NewMockImageService()
	suite.mockImages.SetAsMockForTesting()

	suite.customer = testutil.NewCustomer(suite.T(), suite.db, "Upload Customer")

	router := gin.New()
	router.Use(gin.Recovery())
	v1 := router.Group("/api/v1")
	v1.POST("/uploads/images",
		testutil.MockAuthMiddleware(suite.customer.Auth0ID, suite.customer.Role),
		controllers.UploadImage)

	suite.server = httptest.NewServer(router)
}

func (suite *UploadAcceptanceTestSuite) TearDownSuite() {
	suite.server.Close()
	services.SetImageService(nil)
	if suite.db != nil {
		sqlDB, _ := suite.db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
	}
}

func (suite *UploadAcceptanceTestSuite) SetupTest() {
	suite.mockImages.Clear()
}

func (suite *UploadAcceptanceTestSuite) upload(filename string, content []byte) (*http.Response, map[string]interface{}) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("image", filename)
	suite.NoError(err)
	_, err = part.Write(content)
	suite.NoError(err)
	suite.NoError(writer.Close())

	req, err := http.NewRequest(http.MethodPost, suite.server.URL+"/api/v1/uploads/images", body)
	suite.NoError(err)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := http.DefaultClient.Do(req)
	suite.NoError(err)
	defer resp.Body.Close()

	var decoded map[string]interface{}
	suite.NoError(json.NewDecoder(resp.Body).Decode(&decoded))
	return resp, decoded
}

// TestUploadJewelryPhoto uploads a photo and verifies key and URL come back
func (suite *UploadAcceptanceTestSuite) TestUploadJewelryPhoto() {
	resp, body := suite.upload("broken-chain.jpg", []byte("jpeg content"))

	suite.Equal(http.StatusCreated, resp.StatusCode)
	data := body["data"].(map[string]interface{})
	key := data["key"].(string)
	suite.NotEmpty(key)
	suite.NotEmpty(data["url"])
	suite.True(suite.mockImages.ImageExists(key))
}

// TestRejectNonImageUpload verifies format validation end to end
func (suite *UploadAcceptanceTestSuite) TestRejectNonImageUpload() {
	resp, body := suite.upload("malware.exe", []byte{0x4d, 0x5a})

	suite.Equal(http.StatusBadRequest, resp.StatusCode)
	errData := body["error"].(map[string]interface{})
	suite.Equal("INVALID_FILE_FORMAT", errData["code"])
}

// TestUploadAcceptanceTestSuite runs the suite
func TestUploadAcceptanceTestSuite(t *testing.T) {
	suite.Run(t, new(UploadAcceptanceTestSuite))
}
