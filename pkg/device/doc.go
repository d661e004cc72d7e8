// Package device is the high-level handle for one STEP400 or STEP800 board.
//
// A Device derives its addresses from the board's DIP-switch ID, registers
// its session with a connection.Manager and performs the destination
// handshake that makes the board send replies and reports to this host:
//
//	mgr := connection.NewManager(connection.DefaultConfig())
//	defer mgr.Close()
//
//	dev, err := device.New(device.DefaultConfig(board.STEP400, 1), mgr)
//	if err != nil {
//		return err
//	}
//	defer dev.Close()
//
//	if _, err := dev.Handshake(ctx); err != nil {
//		return err
//	}
//	mode, err := session.GetOne[*catalog.MicrostepMode](ctx, dev.Session(),
//		catalog.GetMicrostepMode{MotorID: 1})
package device
