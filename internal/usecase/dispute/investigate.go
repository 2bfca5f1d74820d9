package dispute

import (
	"fmt"
	"time"

	"github.com/kolatrade/trade-core-service/internal/domain"
	disputedto "github.com/kolatrade/trade-core-service/internal/usecase/dto/dispute"
)

// InvestigateDispute moves an open dispute into active review by ops.
func (uc *DefaultDisputeUsecase) InvestigateDispute(input *disputedto.InvestigateDisputeInput) (*domain.Dispute, error) {
	actor, err := uc.accountRepo.GetAccountByID(input.ActorID)
	if err != nil {
		return nil, err
	}
	if actor.Role != domain.RoleOps && actor.Role != domain.RoleAdmin {
		return nil, domain.Deny("ops role required")
	}

	dispute, err := uc.disputeRepo.GetDisputeByID(input.DisputeID)
	if err != nil {
		return nil, err
	}
	if dispute.Status != domain.DisputeOpen {
		return nil, fmt.Errorf("%w: dispute %s is %s, expected OPEN",
			domain.ErrInvalidTransition, dispute.ID, dispute.Status)
	}

	before := domain.Snapshot(dispute)
	dispute.Status = domain.DisputeInvestigating
	if input.InternalNotes != "" {
		dispute.InternalNotes = appendNote(dispute.InternalNotes, time.Now(), input.InternalNotes)
	}

	entry := &domain.AuditEntry{
		ActorID:    actor.ID,
		Action:     "DISPUTE_INVESTIGATE",
		TargetType: "DISPUTE",
		TargetID:   dispute.ID,
		Reason:     input.InternalNotes,
		Before:     before,
		After:      domain.Snapshot(dispute),
	}
	if err := uc.disputeRepo.UpdateDisputeStatus(dispute, domain.DisputeOpen, entry); err != nil {
		return nil, err
	}

	uc.publishDisputeEvent(dispute)
	return dispute, nil
}

func appendNote(existing string, at time.Time, note string) string {
	line := fmt.Sprintf("[%s] %s", at.Format(time.RFC3339), note)
	if existing == "" {
		return line
	}
	return existing + "\n" + line
}
