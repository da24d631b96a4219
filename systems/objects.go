package systems

import (
	"github.com/automoto/soccer-stars/components"
	"github.com/yohamta/donburi"
)

// syncObject re-centers e's resolv object on its disk.
func syncObject(e *donburi.Entry) {
	if !e.HasComponent(components.Object) {
		return
	}
	body := components.Body.Get(e)
	components.Object.Get(e).SyncTo(body.Position.X, body.Position.Y)
}
