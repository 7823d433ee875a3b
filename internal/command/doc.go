// Package command defines the contract every runnable command implements:
// a static, self-describing Definition and a Run operation that receives its
// resolved variables and two output writers.
package command
