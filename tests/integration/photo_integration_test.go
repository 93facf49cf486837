package integration

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/renovation-manager-api/services"
	"github.com/kendall-kelly/renovation-manager-api/tests/testutil"
	"github.com/stretchr/testify/suite"
)

type photoResponse struct {
	ID       string  `json:"id"`
	URL      string  `json:"url"`
	Caption  *string `json:"caption"`
	ImageURL string  `json:"imageUrl"`
}

// PhotoIntegrationTestSuite exercises the project gallery and profile image uploads
type PhotoIntegrationTestSuite struct {
	suite.Suite
	router *gin.Engine
	store  *services.Store
	images *services.MockImageService
}

// SetupSuite runs once before all tests
func (suite *PhotoIntegrationTestSuite) SetupSuite() {
	testutil.MustSetTestEnvironment(suite.T())
}

// SetupTest runs before each test
func (suite *PhotoIntegrationTestSuite) SetupTest() {
	suite.images = services.NewMockImageService()
	suite.router, suite.store = testutil.NewTestRouter(suite.T(), services.NewMemoryKVStore(), suite.images)
	testutil.Login(suite.T(), suite.router, testutil.AdminEmail, testutil.AdminPassword)
}

// createMultipartRequest builds a multipart upload with one part per filename
func (suite *PhotoIntegrationTestSuite) createMultipartRequest(path, field string, filenames []string, caption string) *http.Request {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for _, name := range filenames {
		part, err := writer.CreateFormFile(field, name)
		suite.Require().NoError(err)
		part.Write([]byte("fake image content"))
	}
	if caption != "" {
		writer.WriteField("caption", caption)
	}
	suite.Require().NoError(writer.Close())

	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func (suite *PhotoIntegrationTestSuite) serve(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// TestUploadPhotos_Batch stores every file and shares the caption
func (suite *PhotoIntegrationTestSuite) TestUploadPhotos_Batch() {
	req := suite.createMultipartRequest("/api/v1/projects/1/photos", "files", []string{"before.png", "after.JPG"}, "Progress")
	w := suite.serve(req)
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var photos []photoResponse
	testutil.Decode(suite.T(), w, &photos)
	suite.Require().Len(photos, 2)
	for _, photo := range photos {
		suite.True(suite.images.ImageExists(photo.URL))
		suite.Contains(photo.ImageURL, "mock=true")
		suite.Require().NotNil(photo.Caption)
		suite.Equal("Progress", *photo.Caption)
	}

	project, err := suite.store.Projects.GetByID("1")
	suite.Require().NoError(err)
	suite.Len(project.Photos, 2)
	suite.True(project.Photos[0].UploadedAt.Equal(project.Photos[1].UploadedAt.Time))
}

// TestUploadPhotos_InvalidFormat rejects the batch and keeps nothing
func (suite *PhotoIntegrationTestSuite) TestUploadPhotos_InvalidFormat() {
	req := suite.createMultipartRequest("/api/v1/projects/1/photos", "files", []string{"ok.png", "notes.txt"}, "")
	w := suite.serve(req)
	suite.Equal(http.StatusBadRequest, w.Code)

	env := testutil.Decode(suite.T(), w, nil)
	suite.Equal("INVALID_FILE_FORMAT", env.Error.Code)
	suite.Empty(suite.images.GetUploadedImages())

	project, err := suite.store.Projects.GetByID("1")
	suite.Require().NoError(err)
	suite.Empty(project.Photos)
}

// TestUploadPhotos_NoFiles requires the files field
func (suite *PhotoIntegrationTestSuite) TestUploadPhotos_NoFiles() {
	req := suite.createMultipartRequest("/api/v1/projects/1/photos", "files", nil, "lonely caption")
	w := suite.serve(req)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "NO_FILE")
}

// TestUploadPhotos_UnknownProject stores nothing
func (suite *PhotoIntegrationTestSuite) TestUploadPhotos_UnknownProject() {
	req := suite.createMultipartRequest("/api/v1/projects/999/photos", "files", []string{"a.png"}, "")
	w := suite.serve(req)
	suite.Equal(http.StatusNotFound, w.Code)
	suite.Empty(suite.images.GetUploadedImages())
}

// TestCaptionAndDelete edits a caption and then deletes the photo and its image
func (suite *PhotoIntegrationTestSuite) TestCaptionAndDelete() {
	w := suite.serve(suite.createMultipartRequest("/api/v1/projects/2/photos", "files", []string{"tile.webp"}, ""))
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var photos []photoResponse
	testutil.Decode(suite.T(), w, &photos)
	photo := photos[0]
	suite.Nil(photo.Caption)

	path := "/api/v1/projects/2/photos/" + photo.ID
	w = testutil.DoJSON(suite.T(), suite.router, http.MethodPut, path, map[string]string{"caption": "New tile"})
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var updated photoResponse
	testutil.Decode(suite.T(), w, &updated)
	suite.Require().NotNil(updated.Caption)
	suite.Equal("New tile", *updated.Caption)

	for i := 0; i < 2; i++ {
		w = testutil.DoJSON(suite.T(), suite.router, http.MethodDelete, path, nil)
		suite.Equal(http.StatusOK, w.Code)
	}
	suite.False(suite.images.ImageExists(photo.URL))

	w = testutil.DoJSON(suite.T(), suite.router, http.MethodPut, path, map[string]string{"caption": "gone"})
	suite.Equal(http.StatusNotFound, w.Code)
}

// TestUploadProfileImage replaces the avatar and removes the previous image
func (suite *PhotoIntegrationTestSuite) TestUploadProfileImage() {
	w := suite.serve(suite.createMultipartRequest("/api/v1/users/me/profile-image", "image", []string{"me.png"}, ""))
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var first struct {
		ProfileImage    string `json:"profileImage"`
		ProfileImageURL string `json:"profileImageUrl"`
	}
	testutil.Decode(suite.T(), w, &first)
	suite.True(suite.images.ImageExists(first.ProfileImage))
	suite.Contains(first.ProfileImageURL, "mock=true")

	w = suite.serve(suite.createMultipartRequest("/api/v1/users/me/profile-image", "image", []string{"me2.png"}, ""))
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var second struct {
		ProfileImage string `json:"profileImage"`
	}
	testutil.Decode(suite.T(), w, &second)

	suite.NotEqual(first.ProfileImage, second.ProfileImage)
	suite.False(suite.images.ImageExists(first.ProfileImage))
	suite.True(suite.images.ImageExists(second.ProfileImage))
}

func TestPhotoIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(PhotoIntegrationTestSuite))
}
