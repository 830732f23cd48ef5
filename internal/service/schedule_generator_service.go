package service

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx/types"
	"go.uber.org/zap"

	"github.com/noah-isme/classtime-scheduler/internal/catalog"
	"github.com/noah-isme/classtime-scheduler/internal/dto"
	"github.com/noah-isme/classtime-scheduler/internal/scheduler"
	"github.com/noah-isme/classtime-scheduler/pkg/cache"
	appErrors "github.com/noah-isme/classtime-scheduler/pkg/errors"
	"github.com/noah-isme/classtime-scheduler/pkg/export"
)

// ScheduleGeneratorService wires the SAT orchestrator, the section
// catalog, and saved-schedule persistence behind the request/response
// shapes the HTTP handler speaks.
type ScheduleGeneratorService struct {
	orchestrator *scheduler.Orchestrator
	saved        *catalog.SavedScheduleRepository
	resultCache  *cache.ResultCache
	cacheTTL     time.Duration
	pdf          *export.PDFExporter
	metrics      *MetricsService
	validator    *validator.Validate
	logger       *zap.Logger
}

// NewScheduleGeneratorService constructs a ScheduleGeneratorService. A nil
// PDF exporter, validator, or logger gets a default; a nil metrics
// collector is kept and records nothing. resultCache may be nil (or backed
// by a nil Redis client) to disable the generate result cache entirely.
func NewScheduleGeneratorService(
	orchestrator *scheduler.Orchestrator,
	saved *catalog.SavedScheduleRepository,
	resultCache *cache.ResultCache,
	cacheTTL time.Duration,
	pdf *export.PDFExporter,
	metrics *MetricsService,
	validate *validator.Validate,
	logger *zap.Logger,
) *ScheduleGeneratorService {
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cacheTTL <= 0 {
		cacheTTL = 10 * time.Minute
	}
	return &ScheduleGeneratorService{
		orchestrator: orchestrator,
		saved:        saved,
		resultCache:  resultCache,
		cacheTTL:     cacheTTL,
		pdf:          pdf,
		metrics:      metrics,
		validator:    validate,
		logger:       logger,
	}
}

// Generate runs the full SAT pipeline for req and returns ranked
// schedules shaped for the wire, short-circuiting through the result
// cache when an identical request was served recently. The bool return
// reports whether the response came from cache.
func (s *ScheduleGeneratorService) Generate(ctx context.Context, req dto.GenerateRequest) (*dto.GenerateResponse, bool, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid generate request")
	}

	cacheKey := generateCacheKey(req)
	var cached dto.GenerateResponse
	if err := s.resultCache.Get(ctx, cacheKey, &cached); err == nil {
		s.metrics.RecordCacheOperation(true)
		return &cached, true, nil
	} else if !errors.Is(err, appErrors.ErrCacheMiss) {
		s.logger.Warn("result cache get failed", zap.String("key", cacheKey), zap.Error(err))
	}
	s.metrics.RecordCacheOperation(false)

	params := toGenerateParams(req)

	start := time.Now()
	schedules, err := s.orchestrator.Generate(ctx, params)
	s.metrics.ObserveGenerate(time.Since(start), len(schedules))
	if err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to generate schedules")
	}

	resp := &dto.GenerateResponse{Schedules: make([]dto.ScheduleResponse, 0, len(schedules))}
	for _, sched := range schedules {
		resp.Schedules = append(resp.Schedules, toScheduleResponse(sched))
	}

	writeStart := time.Now()
	if err := s.resultCache.Set(ctx, cacheKey, resp, s.cacheTTL); err != nil {
		s.logger.Warn("result cache set failed", zap.String("key", cacheKey), zap.Error(err))
	}
	s.metrics.ObserveCacheWrite(time.Since(writeStart))

	return resp, false, nil
}

// generateCacheKey builds a stable cache key from the canonical JSON
// encoding of req: same request shape, same key, regardless of map/slice
// ordering quirks upstream since GenerateRequest's fields are already
// ordered slices.
func generateCacheKey(req dto.GenerateRequest) string {
	encoded, err := json.Marshal(req)
	if err != nil {
		return "schedules:generate:unkeyable"
	}
	sum := sha256.Sum256(encoded)
	return "schedules:generate:" + hex.EncodeToString(sum[:])
}

// Save persists one of a prior Generate call's ranked schedules as a
// versioned draft for studentID/term.
func (s *ScheduleGeneratorService) Save(ctx context.Context, req dto.SaveScheduleRequest) (*catalog.SavedSchedule, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid save request")
	}

	sections := make([]catalog.SavedSection, 0, len(req.Sections))
	for _, sec := range req.Sections {
		sections = append(sections, catalog.SavedSection{
			Course:    sec.Course,
			Component: sec.Component,
			Section:   sec.Section,
			AsString:  sec.AsString,
			Day:       sec.Day,
			StartTime: sec.StartTime,
			EndTime:   sec.EndTime,
		})
	}

	saved := &catalog.SavedSchedule{
		StudentID: req.StudentID,
		Term:      req.Term,
		Score:     req.Score,
		Meta:      types.JSONText(`{}`),
	}

	if err := s.saved.CreateVersioned(ctx, nil, saved, sections); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save schedule")
	}
	return saved, nil
}

// List returns every saved schedule a student has for a term.
func (s *ScheduleGeneratorService) List(ctx context.Context, studentID, term string) ([]catalog.SavedSchedule, error) {
	saved, err := s.saved.ListByStudentTerm(ctx, studentID, term)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list saved schedules")
	}
	return saved, nil
}

// Delete removes a saved schedule by id.
func (s *ScheduleGeneratorService) Delete(ctx context.Context, id string) error {
	if err := s.saved.Delete(ctx, id); err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "saved schedule not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete saved schedule")
	}
	return nil
}

// RenderPDF loads a saved schedule by id and renders it as a printable
// weekly timetable.
func (s *ScheduleGeneratorService) RenderPDF(ctx context.Context, id string) ([]byte, error) {
	saved, err := s.saved.FindByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "saved schedule not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load saved schedule")
	}

	sections, err := catalog.DecodeSavedSections(saved.Sections)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to decode saved schedule")
	}

	schedSections := make([]scheduler.Section, 0, len(sections))
	for _, sec := range sections {
		schedSections = append(schedSections, scheduler.Section{
			Course:    sec.Course,
			Component: sec.Component,
			Section:   sec.Section,
			AsString:  sec.AsString,
			Day:       sec.Day,
			StartTime: sec.StartTime,
			EndTime:   sec.EndTime,
		})
	}

	schedule := scheduler.NewSchedule(schedSections, nil, nil)
	doc, err := s.pdf.Render(schedule, saved.Term+" Schedule")
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render schedule pdf")
	}
	return doc, nil
}

func toGenerateParams(req dto.GenerateRequest) scheduler.GenerateParams {
	prefs := scheduler.DefaultPreferences()
	if req.Preferences.NoMarathons != nil {
		prefs.NoMarathons = *req.Preferences.NoMarathons
	}
	if req.Preferences.DayClasses != nil {
		prefs.DayClasses = *req.Preferences.DayClasses
	}
	if req.Preferences.StartEarly != nil {
		prefs.StartEarly = *req.Preferences.StartEarly
	}
	prefs.CurrentStatus = req.Preferences.CurrentStatus
	prefs.ObeyStatus = req.Preferences.ObeyStatus

	busyTimes := make([]scheduler.Section, 0, len(req.BusyTimes))
	for _, b := range req.BusyTimes {
		day, start, end := b.Day, b.StartTime, b.EndTime
		busyTimes = append(busyTimes, scheduler.Section{
			Day:       &day,
			StartTime: &start,
			EndTime:   &end,
		})
	}

	electives := make([]scheduler.ElectiveGroup, 0, len(req.Electives))
	for _, e := range req.Electives {
		electives = append(electives, scheduler.ElectiveGroup{Courses: e.Courses})
	}

	return scheduler.GenerateParams{
		Term:         req.Term,
		Institution:  req.Institution,
		Courses:      req.Courses,
		BusyTimes:    busyTimes,
		Electives:    electives,
		Preferences:  prefs,
		NumRequested: req.NumRequested,
	}
}

func toScheduleResponse(sched *scheduler.Schedule) dto.ScheduleResponse {
	sections := make([]dto.ScheduleSectionResponse, 0, len(sched.Sections))
	for _, sec := range sched.Sections {
		sections = append(sections, dto.ScheduleSectionResponse{
			Course:    sec.Course,
			Component: sec.Component,
			Section:   sec.Section,
			AsString:  sec.AsString,
			Day:       sec.Day,
			StartTime: sec.StartTime,
			EndTime:   sec.EndTime,
		})
	}
	return dto.ScheduleResponse{
		Sections:     sections,
		MoreLikeThis: sched.MoreLikeThis,
		OverallScore: sched.OverallScore(),
	}
}
