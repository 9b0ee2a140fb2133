package unit_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pitchside/newsletter-service/internal"
	"github.com/pitchside/newsletter-service/internal/auth"
	di "github.com/pitchside/newsletter-service/internal/di"
	"github.com/pitchside/newsletter-service/internal/dto"
	"github.com/pitchside/newsletter-service/internal/outcome"
	"github.com/pitchside/newsletter-service/internal/testutils"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const bulkPublishUrl = "/newsletters/bulk/publish"
const bulkDeleteUrl = "/newsletters/bulk/delete"
const bulkPreviewUrl = "/newsletters/bulk/preview"
const selectionPreviewUrl = "/newsletters/selection/preview"
const reviewQueueUrl = "/newsletters/review-queue"

func TestBulkController(t *testing.T) {
	controller := gomock.NewController(t)
	defer controller.Finish()

	testApp, err := di.InjectMockedBackend(context.TODO(), controller)
	if err != nil {
		t.Fatalf("failed to create mocked backend - %v", err)
	}

	testBulkPublish(t, testApp.Engine, testApp)
	testBulkDelete(t, testApp.Engine, testApp)
	testBulkPreview(t, testApp.Engine, testApp)
	testCountSelection(t, testApp.Engine, testApp)
	testGetReviewQueue(t, testApp.Engine, testApp)
}

func postBulk(e *gin.Engine, url string, body any) *httptest.ResponseRecorder {
	marshalled, _ := json.Marshal(body)
	reader := bytes.NewReader(marshalled)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, url, reader)
	req.Header.Add(string(auth.UserHeader), testUserId)
	e.ServeHTTP(w, req)
	return w
}

func makeReport(succeeded []int64, failures ...outcome.Failure) outcome.Report {
	report := outcome.NewReport()

	for _, id := range succeeded {
		report.AddSuccess(id)
	}

	for _, failure := range failures {
		report.AddFailure(failure.Id, errors.New(failure.Error))
	}

	return report
}

func testBulkPublish(t *testing.T, e *gin.Engine, mock *di.MockedBackend) {
	mock.Cache.
		EXPECT().
		DelWithPrefix(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	registryMock := mock.Registry.MockBulkRegistry

	tests := []struct {
		name              string
		body              any
		setupMock         func()
		expectedStatus    int
		expectedError     string
		expectedSucceeded []int64
	}{
		{
			name: "Can publish newsletters by ids",
			body: gin.H{"selection": []int64{1, 2}},
			setupMock: func() {
				registryMock.
					EXPECT().
					PublishNewsletters(gomock.Any(), testUserId, []int64{1, 2}).
					Return(makeReport([]int64{1, 2}), nil)
			},
			expectedStatus:    http.StatusOK,
			expectedSucceeded: []int64{1, 2},
		},
		{
			name: "Can publish a single newsletter id",
			body: gin.H{"selection": 5},
			setupMock: func() {
				registryMock.
					EXPECT().
					PublishNewsletters(gomock.Any(), testUserId, []int64{5}).
					Return(makeReport([]int64{5}), nil)
			},
			expectedStatus:    http.StatusOK,
			expectedSucceeded: []int64{5},
		},
		{
			name: "Can publish a filtered selection",
			body: gin.H{"selection": gin.H{
				"filter_params":  gin.H{"status": "IN_REVIEW"},
				"expected_total": 2,
			}},
			setupMock: func() {
				registryMock.
					EXPECT().
					ResolveFilteredIds(
						gomock.Any(),
						dto.NewsletterFilters{Statuses: []dto.NewsletterStatus{dto.InReview}},
						[]int64{},
						testutils.IntPtr(2)).
					Return([]int64{3, 4}, nil)

				registryMock.
					EXPECT().
					PublishNewsletters(gomock.Any(), testUserId, []int64{3, 4}).
					Return(makeReport([]int64{3, 4}), nil)
			},
			expectedStatus:    http.StatusOK,
			expectedSucceeded: []int64{3, 4},
		},
		{
			name: "Should conflict when the selection is stale",
			body: gin.H{"selection": gin.H{
				"filter_params":  gin.H{"status": "IN_REVIEW"},
				"expected_total": 2,
			}},
			setupMock: func() {
				registryMock.
					EXPECT().
					ResolveFilteredIds(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, internal.StaleSelection{Expected: 2, Matched: 5})
			},
			expectedStatus: http.StatusConflict,
			expectedError:  "selection is stale",
		},
		{
			name:           "Should fail when the selection is empty",
			body:           gin.H{"selection": []int64{}},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "no actionable target",
		},
		{
			name:           "Should fail when the selection is missing",
			body:           gin.H{},
			expectedStatus: http.StatusBadRequest,
			expectedError:  `Key: 'BulkActionReq.Selection' Error:Field validation for 'Selection' failed on the 'required' tag`,
		},
		{
			name: "Should fail when the filters are unknown",
			body: gin.H{"selection": gin.H{
				"filter_params": gin.H{"bogus": 1},
			}},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "unknown filter bogus",
		},
		{
			name: "Should fail if the registry fails",
			body: gin.H{"selection": []int64{1}},
			setupMock: func() {
				registryMock.
					EXPECT().
					PublishNewsletters(gomock.Any(), testUserId, []int64{1}).
					Return(outcome.NewReport(), errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setupMock != nil {
				tt.setupMock()
			}

			w := postBulk(e, bulkPublishUrl, tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedError != "" {
				resp := make(map[string]string)
				if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
					t.Fatal(err)
				}
				assert.Contains(t, resp["error"], tt.expectedError)
				return
			}

			if tt.expectedSucceeded != nil {
				var resp dto.BulkOutcomeResp
				if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
					t.Fatal(err)
				}
				assert.ElementsMatch(t, tt.expectedSucceeded, resp.Succeeded)
			}
		})
	}
}

func testBulkDelete(t *testing.T, e *gin.Engine, mock *di.MockedBackend) {
	mock.Cache.
		EXPECT().
		DelWithPrefix(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	registryMock := mock.Registry.MockBulkRegistry

	tests := []struct {
		name            string
		body            any
		setupMock       func()
		expectedStatus  int
		expectedError   string
		expectedMessage string
	}{
		{
			name: "Can delete newsletters by ids",
			body: gin.H{"selection": []int64{1, 2}},
			setupMock: func() {
				registryMock.
					EXPECT().
					DeleteNewsletters(gomock.Any(), []int64{1, 2}).
					Return(makeReport([]int64{1, 2}), nil)
			},
			expectedStatus:  http.StatusOK,
			expectedMessage: "Deleted 2 newsletters.",
		},
		{
			name: "Reports failures without aborting the batch",
			body: gin.H{"selection": []int64{1, 2}},
			setupMock: func() {
				registryMock.
					EXPECT().
					DeleteNewsletters(gomock.Any(), []int64{1, 2}).
					Return(makeReport(
						[]int64{1},
						outcome.Failure{Id: 2, Error: "newsletter 2 has status PUBLISHED"},
					), nil)
			},
			expectedStatus:  http.StatusOK,
			expectedMessage: "Deleted 1 newsletter. Failed for 1 newsletter: #2.",
		},
		{
			name: "Should fail if the registry fails",
			body: gin.H{"selection": []int64{1}},
			setupMock: func() {
				registryMock.
					EXPECT().
					DeleteNewsletters(gomock.Any(), []int64{1}).
					Return(outcome.NewReport(), errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setupMock != nil {
				tt.setupMock()
			}

			w := postBulk(e, bulkDeleteUrl, tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedError != "" {
				resp := make(map[string]string)
				if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
					t.Fatal(err)
				}
				assert.Contains(t, resp["error"], tt.expectedError)
				return
			}

			if tt.expectedMessage != "" {
				var resp dto.BulkOutcomeResp
				if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
					t.Fatal(err)
				}
				if assert.NotNil(t, resp.Message) {
					assert.Equal(t, tt.expectedMessage, *resp.Message)
				}
			}
		})
	}
}

func testBulkPreview(t *testing.T, e *gin.Engine, mock *di.MockedBackend) {
	registryMock := mock.Registry.MockBulkRegistry

	summaries := []dto.NewsletterSummary{
		{Id: 1, Title: "Matchday Digest", Topic: "matchday", Status: dto.InReview},
		{Id: 2, Title: "Transfer Roundup", Topic: "transfers", Status: dto.InReview},
	}

	tests := []struct {
		name              string
		body              any
		setupMock         func()
		expectedStatus    int
		expectedSucceeded []int64
		expectedFailure   string
		expectedMessage   string
	}{
		{
			name: "Can queue previews for newsletters",
			body: gin.H{"selection": []int64{1, 2}},
			setupMock: func() {
				registryMock.
					EXPECT().
					GetNewsletterSummaries(gomock.Any(), []int64{1, 2}).
					Return(summaries, nil)

				mock.Publisher.
					EXPECT().
					Publish(gomock.Any(), gomock.Any()).
					Return(nil).
					Times(2)
			},
			expectedStatus:    http.StatusOK,
			expectedSucceeded: []int64{1, 2},
			expectedMessage:   "Sent admin preview to 2 newsletters.",
		},
		{
			name: "Records a failure when a newsletter is missing",
			body: gin.H{"selection": []int64{1, 2}},
			setupMock: func() {
				registryMock.
					EXPECT().
					GetNewsletterSummaries(gomock.Any(), []int64{1, 2}).
					Return(summaries[:1], nil)

				mock.Publisher.
					EXPECT().
					Publish(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			expectedStatus:    http.StatusOK,
			expectedSucceeded: []int64{1},
			expectedFailure:   "not found",
		},
		{
			name: "Records a failure when the queue rejects a preview",
			body: gin.H{"selection": []int64{1, 2}},
			setupMock: func() {
				registryMock.
					EXPECT().
					GetNewsletterSummaries(gomock.Any(), []int64{1, 2}).
					Return(summaries, nil)

				mock.Publisher.
					EXPECT().
					Publish(gomock.Any(), gomock.Any()).
					Return(nil)

				mock.Publisher.
					EXPECT().
					Publish(gomock.Any(), gomock.Any()).
					Return(errors.New("broker down"))
			},
			expectedStatus:    http.StatusOK,
			expectedSucceeded: []int64{1},
			expectedFailure:   "failed to queue preview",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setupMock != nil {
				tt.setupMock()
			}

			w := postBulk(e, bulkPreviewUrl, tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var resp dto.BulkOutcomeResp
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatal(err)
			}

			assert.ElementsMatch(t, tt.expectedSucceeded, resp.Succeeded)

			if tt.expectedFailure != "" {
				if assert.Len(t, resp.Failures, 1) {
					assert.Contains(t, resp.Failures[0].Error, tt.expectedFailure)
				}
			}

			if tt.expectedMessage != "" {
				if assert.NotNil(t, resp.Message) {
					assert.Equal(t, tt.expectedMessage, *resp.Message)
				}
			}
		})
	}
}

func testCountSelection(t *testing.T, e *gin.Engine, mock *di.MockedBackend) {
	registryMock := mock.Registry.MockBulkRegistry

	tests := []struct {
		name             string
		body             any
		setupMock        func()
		expectedStatus   int
		expectedError    string
		expectedMatched  int
		expectedExcluded int
		expectedMessage  string
	}{
		{
			name: "Can count a filtered selection",
			body: gin.H{
				"filter_params": gin.H{"status": []string{"DRAFT"}},
				"exclude_ids":   []int64{5},
			},
			setupMock: func() {
				registryMock.
					EXPECT().
					CountSelection(
						gomock.Any(),
						dto.NewsletterFilters{Statuses: []dto.NewsletterStatus{dto.Draft}},
						[]int64{5}).
					Return(12, 1, nil)
			},
			expectedStatus:   http.StatusOK,
			expectedMatched:  12,
			expectedExcluded: 1,
			expectedMessage:  "All 12 filtered newsletters selected. 1 is excluded.",
		},
		{
			name: "Can count with no filters",
			body: gin.H{},
			setupMock: func() {
				registryMock.
					EXPECT().
					CountSelection(gomock.Any(), dto.NewsletterFilters{}, []int64{}).
					Return(0, 0, nil)
			},
			expectedStatus:  http.StatusOK,
			expectedMessage: "No newsletters match your filters.",
		},
		{
			name: "Should fail when the filters are invalid",
			body: gin.H{
				"filter_params": gin.H{"status": "NOPE"},
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "NOPE is not a newsletter status",
		},
		{
			name: "Should fail if the registry fails",
			body: gin.H{},
			setupMock: func() {
				registryMock.
					EXPECT().
					CountSelection(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(0, 0, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setupMock != nil {
				tt.setupMock()
			}

			w := postBulk(e, selectionPreviewUrl, tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedError != "" {
				resp := make(map[string]string)
				if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
					t.Fatal(err)
				}
				assert.Contains(t, resp["error"], tt.expectedError)
				return
			}

			if tt.expectedMessage != "" {
				var resp dto.SelectionCountResp
				if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
					t.Fatal(err)
				}
				assert.Equal(t, tt.expectedMatched, resp.Matched)
				assert.Equal(t, tt.expectedExcluded, resp.Excluded)
				assert.Equal(t, tt.expectedMessage, resp.Message)
			}
		})
	}
}

func testGetReviewQueue(t *testing.T, e *gin.Engine, mock *di.MockedBackend) {
	registryMock := mock.Registry.MockBulkRegistry

	getReviewQueue := func(filters dto.ReviewQueueFilters) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, reviewQueueUrl, nil)
		req.Header.Add(string(auth.UserHeader), testUserId)
		testutils.AddReviewQueueFilters(req, &filters)
		e.ServeHTTP(w, req)
		return w
	}

	summaries := []dto.NewsletterSummary{
		{Id: 1, Title: "Matchday Digest", Topic: "matchday", Status: dto.InReview},
		{Id: 2, Title: "Transfer Roundup", Topic: "transfers", Status: dto.InReview},
	}

	tests := []struct {
		name             string
		filters          dto.ReviewQueueFilters
		setupMock        func()
		expectedStatus   int
		expectedError    string
		expectedTotal    int
		expectedProgress string
	}{
		{
			name: "Can get the review queue",
			setupMock: func() {
				registryMock.
					EXPECT().
					GetReviewQueue(gomock.Any(), dto.ReviewQueueFilters{}).
					Return(2, summaries, nil)
			},
			expectedStatus:   http.StatusOK,
			expectedTotal:    2,
			expectedProgress: "Newsletter 1 of 2",
		},
		{
			name: "Can page the review queue",
			filters: dto.ReviewQueueFilters{
				Take: testutils.IntPtr(1),
				Skip: testutils.IntPtr(1),
			},
			setupMock: func() {
				registryMock.
					EXPECT().
					GetReviewQueue(gomock.Any(), dto.ReviewQueueFilters{
						Take: testutils.IntPtr(1),
						Skip: testutils.IntPtr(1),
					}).
					Return(3, summaries[1:], nil)
			},
			expectedStatus:   http.StatusOK,
			expectedTotal:    3,
			expectedProgress: "Newsletter 2 of 3",
		},
		{
			name: "Should fail when take is not positive",
			filters: dto.ReviewQueueFilters{
				Take: testutils.IntPtr(0),
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  `Key: 'ReviewQueueFilters.Take' Error:Field validation for 'Take' failed on the 'min' tag`,
		},
		{
			name: "Should fail if the registry fails",
			setupMock: func() {
				registryMock.
					EXPECT().
					GetReviewQueue(gomock.Any(), gomock.Any()).
					Return(0, nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setupMock != nil {
				tt.setupMock()
			}

			w := getReviewQueue(tt.filters)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedError != "" {
				resp := make(map[string]string)
				if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
					t.Fatal(err)
				}
				assert.Contains(t, resp["error"], tt.expectedError)
				return
			}

			var page dto.ReviewQueuePage
			if err := json.Unmarshal(w.Body.Bytes(), &page); err != nil {
				t.Fatal(err)
			}

			assert.Equal(t, tt.expectedTotal, page.Total)

			if assert.NotEmpty(t, page.Data) {
				assert.Equal(t, tt.expectedProgress, page.Data[0].Progress)
			}

			assert.Equal(t, "both", page.Modal.Resize)
		})
	}
}
