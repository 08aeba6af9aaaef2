// Package target defines the descriptor a build plan is resolved for: a
// closed set of platforms, the CPU architecture (including the iOS
// simulator slice), the build configuration and the host's debug runtime
// policy.
//
// Descriptors are plain comparable values. Resolution never reads ambient
// build state; Detect is the only function that looks at the host.
package target
