// Package services implements the driving ports over a GridTransport.
//
// Each TTP resource has a service that checks its keys and payload, builds
// the endpoint path and sends one request per operation. Grid bundles them;
// WorkflowService runs a manifest through them in phase order.
package services
