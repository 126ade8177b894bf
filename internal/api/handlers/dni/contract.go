package dni

import (
	"context"

	"github.com/m04kA/WJL-TicketService/internal/integrations/dniservice"
)

type PersonLookup interface {
	Lookup(ctx context.Context, dni string) (*dniservice.Person, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
