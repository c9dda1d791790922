// Package stream pushes live search state to external renderers over
// WebSocket, so a browser (or any socket client) can draw the grid while
// the engine steps.
//
// Architecture:
//
// A hub-and-spoke model: one Hub owns every connection; each client gets
// a dedicated read and write goroutine. The engine side never touches a
// socket — the driver forwards engine hooks into Hub broadcast calls and
// the hub fans frames out to whoever is listening. A slow client whose
// send buffer fills is dropped rather than allowed to stall the run.
//
// Message protocol (JSON, one Frame per message):
//
//   - {"event":"cells","cells":[{"row":1,"col":2,"state":"Open"},…]}
//     incremental per-step state changes
//   - {"event":"status","status":"A path of length 42 is found in 17ms."}
//     terminal outcome lines
//   - {"event":"grid","rows":35,"cols":65,"cells":[…]}
//     full snapshot, sent on demand for newly joined clients
//
// Usage:
//
//	hub := stream.NewHub()
//	go hub.Run()
//	http.HandleFunc("/ws", hub.ServeWS)
//	…
//	search.WithOnVisit(func(c *grid.Cell) { hub.BroadcastCell(c) })
//
// Concurrency: Hub.Run serializes all registry mutations through its
// channels; Broadcast* methods are safe from any goroutine, including
// the single-threaded algorithm loop.
package stream
