package tuid

// userType is a hand-written kind used across the package tests; any type
// satisfying the Kind contract is interchangeable with generated ones.
type userType uint8

const (
	userRetail userType = iota
	userBusiness
	userOrganization
)

var userTypeNames = [...]string{"retail", "business", "org"}

func (k userType) Tag() uint8   { return uint8(k) }
func (k userType) Name() string { return userTypeNames[k] }

func (userType) FromTag(tag uint8) (userType, bool) {
	if int(tag) >= len(userTypeNames) {
		return 0, false
	}
	return userType(tag), true
}

// serverType has names containing underscores, to exercise end-anchored
// text parsing.
type serverType uint8

const (
	serverHTTP serverType = iota
	serverSocket
)

var serverTypeNames = [...]string{"http_server", "socket_server"}

func (k serverType) Tag() uint8   { return uint8(k) }
func (k serverType) Name() string { return serverTypeNames[k] }

func (serverType) FromTag(tag uint8) (serverType, bool) {
	if int(tag) >= len(serverTypeNames) {
		return 0, false
	}
	return serverType(tag), true
}
