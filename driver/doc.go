// Package driver is a client for the REST API of a Synergos TTP (trusted
// third party), the orchestrator of a federated learning grid.
//
// A Driver exposes one accessor per sub-resource. Connection resources
// (collaborations, projects, experiments, runs, participants,
// registrations and tags) support create, read_all, read, update and
// delete. Training resources (alignments, models, optimizations) and
// evaluation resources (validations, predictions) are triggered with
// Create and read back with Read; their other operations fail with
// ErrUnsupportedOperation.
//
// Example:
//
//	d, err := driver.New("localhost", 5000)
//	if err != nil {
//		return err
//	}
//	_, err = d.Projects().Create(ctx, driver.Keys{CollabID: "c1"}, driver.Project{
//		ID:     "p1",
//		Action: driver.ActionClassify,
//	})
//
// Every call blocks until the TTP answers, the timeout elapses or ctx is
// cancelled. Nothing is retried.
package driver
