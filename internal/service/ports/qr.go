package ports

import "github.com/hoaht-8203/Badminton-Court-Management-System-sub003/internal/domain"

type QRIssuer interface {
	Payload(p *domain.Payment) string
}
