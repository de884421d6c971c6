package usecase

// Idempotence records handled message ids so a redelivered update is
// processed once.
type Idempotence struct {
	repo idempotenceRepository
}

func NewIdempotence(repo idempotenceRepository) *Idempotence {
	return &Idempotence{
		repo: repo,
	}
}

func (u *Idempotence) Execute(id string) (bool, error) {
	return u.repo.MakeRecord(id)
}
