package collection

import "github.com/nstuweb/campus-backend/internal/apperr"

// Op is the closed set of mutations an embedded collection understands.
// Incoming codes are free-form strings; ParseOp is the only way in, so an
// unrecognized code can never fall through to somebody else's branch.
type Op int

const (
	OpCreate Op = iota + 1
	OpUpdate
	OpDelete
	OpLike
	OpRate
	OpReply
	OpJoin
	OpLeave
)

var opNames = map[Op]string{
	OpCreate: "create",
	OpUpdate: "update",
	OpDelete: "delete",
	OpLike:   "like",
	OpRate:   "rate",
	OpReply:  "reply",
	OpJoin:   "join",
	OpLeave:  "leave",
}

func (o Op) String() string {
	if name, ok := opNames[o]; ok {
		return name
	}
	return "unknown"
}

// ParseOp resolves a code against the ops the target collection allows.
func ParseOp(code string, allowed ...Op) (Op, error) {
	for _, op := range allowed {
		if opNames[op] == code {
			return op, nil
		}
	}
	return 0, apperr.Invalid("unknown operation %q", code)
}
