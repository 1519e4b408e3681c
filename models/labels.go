package models

// Display labels shown in the UI, kept separate from the stored canonical
// values so the storage schema stays locale-independent.

// Label returns the Portuguese display label for an appointment status.
func (s AppointmentStatus) Label() string {
	switch s {
	case AppointmentScheduled:
		return "Agendado"
	case AppointmentInProgress:
		return "Em andamento"
	case AppointmentCompleted:
		return "Concluído"
	case AppointmentCancelled:
		return "Cancelado"
	}
	return string(s)
}

// Label returns the Portuguese display label for a quote status.
func (s QuoteStatus) Label() string {
	switch s {
	case QuotePending:
		return "Aberto"
	case QuoteSent:
		return "Enviado"
	case QuoteApproved:
		return "Aprovado"
	case QuoteRejected:
		return "Rejeitado"
	case QuoteCompleted:
		return "Concluído"
	}
	return string(s)
}

// Label returns the Portuguese display label for a service category.
func (c ServiceCategory) Label() string {
	switch c {
	case CategoryWashing:
		return "Lavagem"
	case CategoryPolishing:
		return "Polimento"
	case CategoryCoating:
		return "Vitrificação"
	case CategoryDetailing:
		return "Detalhamento"
	case CategoryOther:
		return "Outros"
	}
	return string(c)
}
