// Package memory provides in-process implementations of the repository interfaces
// for tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/yigit/feedbackd/internal/app/models"
	"github.com/yigit/feedbackd/internal/app/repositories"
	"github.com/yigit/feedbackd/internal/pkg/apperrors"
)

// Store holds every table in memory. The zero value is not usable; call NewStore.
type Store struct {
	mu       sync.Mutex
	students map[string]*models.Student
	faculty  map[string]*models.Faculty
	teachers map[string]*models.Teacher
	feedback []*models.Feedback
	nextID   int64

	// Err, when set, is returned by every operation
	Err error
	// SkipExistsCheck makes Exists always report false so Create hits the unique key
	SkipExistsCheck bool
}

var (
	_ repositories.IStudentRepository  = (*StudentRepository)(nil)
	_ repositories.IFacultyRepository  = (*FacultyRepository)(nil)
	_ repositories.ITeacherRepository  = (*TeacherRepository)(nil)
	_ repositories.IFeedbackRepository = (*FeedbackRepository)(nil)
)

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		students: map[string]*models.Student{},
		faculty:  map[string]*models.Faculty{},
		teachers: map[string]*models.Teacher{},
	}
}

// AddStudent inserts or replaces a student
func (s *Store) AddStudent(st models.Student) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.students[st.ID] = &st
}

// AddFaculty inserts or replaces a faculty member
func (s *Store) AddFaculty(f models.Faculty) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.faculty[f.ID] = &f
}

// AddTeacher inserts or replaces a teacher
func (s *Store) AddTeacher(t models.Teacher) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.teachers[t.ID] = &t
}

// FeedbackRows returns a copy of every stored feedback row
func (s *Store) FeedbackRows() []models.Feedback {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Feedback, 0, len(s.feedback))
	for _, f := range s.feedback {
		out = append(out, *f)
	}
	return out
}

// Students returns the student repository view
func (s *Store) Students() *StudentRepository { return &StudentRepository{s} }

// Faculty returns the faculty repository view
func (s *Store) Faculty() *FacultyRepository { return &FacultyRepository{s} }

// Teachers returns the teacher repository view
func (s *Store) Teachers() *TeacherRepository { return &TeacherRepository{s} }

// Feedback returns the feedback repository view
func (s *Store) Feedback() *FeedbackRepository { return &FeedbackRepository{s} }

// StudentRepository implements repositories.IStudentRepository
type StudentRepository struct{ s *Store }

func (r *StudentRepository) GetByID(_ context.Context, id string) (*models.Student, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	st, ok := r.s.students[id]
	if !ok {
		return nil, apperrors.ErrResourceNotFound
	}
	cp := *st
	return &cp, nil
}

// FacultyRepository implements repositories.IFacultyRepository
type FacultyRepository struct{ s *Store }

func (r *FacultyRepository) GetByID(_ context.Context, id string) (*models.Faculty, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	f, ok := r.s.faculty[id]
	if !ok {
		return nil, apperrors.ErrResourceNotFound
	}
	cp := *f
	return &cp, nil
}

// TeacherRepository implements repositories.ITeacherRepository
type TeacherRepository struct{ s *Store }

func (r *TeacherRepository) List(_ context.Context) ([]*models.Teacher, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	out := make([]*models.Teacher, 0, len(r.s.teachers))
	for _, t := range r.s.teachers {
		cp := *t
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// FeedbackRepository implements repositories.IFeedbackRepository
type FeedbackRepository struct{ s *Store }

func (r *FeedbackRepository) Exists(_ context.Context, studentID, teacherID, semester string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return false, r.s.Err
	}
	if r.s.SkipExistsCheck {
		return false, nil
	}
	return r.s.find(studentID, teacherID, semester) != nil, nil
}

func (r *FeedbackRepository) SubmittedTeacherIDs(_ context.Context, studentID, semester string) ([]string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	var ids []string
	for _, f := range r.s.feedback {
		if f.StudentID == studentID && f.Semester == semester {
			ids = append(ids, f.TeacherID)
		}
	}
	return ids, nil
}

// Create enforces the (student, teacher, semester) unique key like the database index
func (r *FeedbackRepository) Create(_ context.Context, feedback *models.Feedback) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return 0, r.s.Err
	}
	if r.s.find(feedback.StudentID, feedback.TeacherID, feedback.Semester) != nil {
		return 0, apperrors.ErrAlreadySubmitted
	}
	r.s.nextID++
	feedback.ID = r.s.nextID
	feedback.CreatedAt = time.Now().UTC()
	cp := *feedback
	r.s.feedback = append(r.s.feedback, &cp)
	return feedback.ID, nil
}

func (r *FeedbackRepository) ListByTeacher(_ context.Context, teacherID string) ([]*models.FeedbackDetail, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	details := []*models.FeedbackDetail{}
	for _, f := range r.s.feedback {
		if f.TeacherID != teacherID {
			continue
		}
		st, ok := r.s.students[f.StudentID]
		if !ok {
			continue
		}
		details = append(details, &models.FeedbackDetail{Feedback: *f, StudentName: st.Name})
	}
	return details, nil
}

func (s *Store) find(studentID, teacherID, semester string) *models.Feedback {
	for _, f := range s.feedback {
		if f.StudentID == studentID && f.TeacherID == teacherID && f.Semester == semester {
			return f
		}
	}
	return nil
}
