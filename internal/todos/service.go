package todos

import "context"

// UpdateInput carries an optional partial update. At least one field
// must be set; the handler enforces that.
type UpdateInput struct {
	Title     *string
	Completed *bool
}

// Service handles todo business logic.
type Service struct {
	repo Repository
}

// NewService builds a Service instance.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns all todos for the user, newest first.
func (s *Service) List(ctx context.Context, userID int64) ([]Todo, error) {
	return s.repo.List(ctx, userID)
}

// Get returns a single todo scoped to the user.
func (s *Service) Get(ctx context.Context, id, userID int64) (*Todo, error) {
	return s.repo.Get(ctx, id, userID)
}

// Create adds a new todo for the user.
func (s *Service) Create(ctx context.Context, userID int64, title string, completed bool) (*Todo, error) {
	return s.repo.Create(ctx, &Todo{Title: title, Completed: completed, UserID: userID})
}

// Update applies a partial update to a todo scoped to the user.
func (s *Service) Update(ctx context.Context, id, userID int64, input UpdateInput) (*Todo, error) {
	return s.repo.Update(ctx, id, userID, input.Title, input.Completed)
}

// Delete removes a todo scoped to the user.
func (s *Service) Delete(ctx context.Context, id, userID int64) error {
	return s.repo.Delete(ctx, id, userID)
}

// ToggleComplete flips a todo's completed flag.
func (s *Service) ToggleComplete(ctx context.Context, id, userID int64) (*Todo, error) {
	todo, err := s.repo.Get(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	flipped := !todo.Completed
	return s.repo.Update(ctx, id, userID, nil, &flipped)
}
