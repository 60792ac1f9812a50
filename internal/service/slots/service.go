package slots

import (
	"context"
	"errors"
	"fmt"

	slotRepo "github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/infra/storage/slot"
	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/service/slots/models"
)

// Service manages the availability rules from the back office. Slot
// records only describe offered windows; they never hold booking state.
type Service struct {
	slotRepo SlotRepository
	logger   Logger
}

// NewService creates the slots service.
func NewService(slotRepo SlotRepository, logger Logger) *Service {
	return &Service{
		slotRepo: slotRepo,
		logger:   logger,
	}
}

// Create registers a new availability rule.
func (s *Service) Create(ctx context.Context, req *models.SlotRecordRequest) (*models.SlotRecordResponse, error) {
	record, err := req.ToDomainSlotRecord()
	if err != nil {
		s.logger.Warn("Create: invalid slot record: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.slotRepo.Create(ctx, record)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: slot record created id=%d recurring=%t", created.ID, created.IsRecurring)
	return models.FromDomainSlotRecord(created), nil
}

// GetByID returns one slot record.
func (s *Service) GetByID(ctx context.Context, id int64) (*models.SlotRecordResponse, error) {
	record, err := s.slotRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("GetByID: slot record id=%d not found", id)
			return nil, ErrSlotNotFound
		}
		s.logger.Error("GetByID: repository error for slot record id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSlotRecord(record), nil
}

// List returns every slot record for the back office.
func (s *Service) List(ctx context.Context) (*models.SlotRecordListResponse, error) {
	records, err := s.slotRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d slot records", len(records))
	return models.FromDomainSlotRecordList(records), nil
}

// Update rewrites an availability rule. The whole record is replaced,
// including the recurring/one-off axis.
func (s *Service) Update(ctx context.Context, id int64, req *models.SlotRecordRequest) (*models.SlotRecordResponse, error) {
	record, err := req.ToDomainSlotRecord()
	if err != nil {
		s.logger.Warn("Update: invalid slot record id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	record.ID = id

	if err := s.slotRepo.Update(ctx, record); err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("Update: slot record id=%d not found", id)
			return nil, ErrSlotNotFound
		}
		s.logger.Error("Update: repository error for slot record id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	updated, err := s.slotRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Update: reload slot record id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - reload record: %v", ErrInternal, err)
	}

	s.logger.Info("Update: slot record updated id=%d", id)
	return models.FromDomainSlotRecord(updated), nil
}

// Delete removes an availability rule. Bookings already taken on windows
// this rule produced are left as they are.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.slotRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("Delete: slot record id=%d not found", id)
			return ErrSlotNotFound
		}
		s.logger.Error("Delete: repository error for slot record id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: slot record deleted id=%d", id)
	return nil
}
