package services

import "github.com/hypergym/hypergym/internal/models"

type BranchDirectory interface {
	List() ([]models.Branch, error)
}

type BranchService struct {
	branches BranchDirectory
}

func NewBranchService(branches BranchDirectory) *BranchService {
	return &BranchService{branches: branches}
}

// Branches lists the gym locations. A degraded store reads as an empty
// directory.
func (service *BranchService) Branches() ([]models.Branch, error) {
	branches, err := service.branches.List()
	if err != nil {
		return []models.Branch{}, nil
	}
	return branches, nil
}
