package midtrans

import (
	"net/http"
	"time"

	"tabletalk-backend/internal/utils"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

// The Snap call is the only network dependency with latency risk; its expiry
// must surface as a gateway error, never a hang.
const gatewayTimeout = 15 * time.Second

// SnapClient is the slice of the Midtrans Snap API this service uses.
type SnapClient interface {
	CreateTransaction(req *snap.Request) (*snap.Response, *midtrans.Error)
}

func NewSnapClient() SnapClient {
	env := midtrans.Sandbox
	if utils.GetConfig("IsProd") == "true" {
		env = midtrans.Production
	}

	midtrans.DefaultGoHttpClient = &http.Client{Timeout: gatewayTimeout}

	client := &snap.Client{}
	client.New(utils.GetConfig("SERVER_KEY"), env)
	return client
}
