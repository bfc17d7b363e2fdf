package assemble

import "fmt"

// registrationGuard returns the duplicate-registration interceptor. It
// installs itself once the registration primitive exists and, on a name
// already seen, warns, invokes any completion callback with the previous
// value, and returns the existing class instead of re-registering.
//
// Graph construction already discards duplicate registrations statically,
// but a prebuilt framework bundle is opaque to the indexer, so collisions
// between bundle content and application classes are still possible at
// runtime.
func registrationGuard(ns string) string {
	return fmt.Sprintf(`// duplicate-registration guard
(function() {
    var NS = __global.%[1]s;
    if (!NS || typeof NS.define !== 'function' || NS.__defineGuarded) { return; }
    var defineRaw = NS.define;
    var seen = {};
    NS.__defineGuarded = true;
    NS.define = function(name, config, onCreated) {
        if (Object.prototype.hasOwnProperty.call(seen, name)) {
            if (__global.console && __global.console.warn) {
                __global.console.warn('duplicate class registration ignored: ' + name);
            }
            if (typeof onCreated === 'function') { onCreated.call(seen[name], seen[name]); }
            return seen[name];
        }
        var cls = defineRaw.apply(NS, arguments);
        seen[name] = cls;
        return cls;
    };
})();
`, ns)
}

// verificationTail returns the trailing block that checks for the core
// primitives and warns about anything missing. The build-time counterpart
// of the fatal decision lives in the orchestrator.
func verificationTail(ns string) string {
	return fmt.Sprintf(`// bundle verification
(function() {
    var warn = function(msg) {
        if (__global.console && __global.console.warn) { __global.console.warn(msg); }
    };
    var NS = __global.%[1]s;
    if (!NS) { warn('bundle verification: namespace %[1]s missing'); return; }
    if (typeof NS.define !== 'function') { warn('bundle verification: registration primitive missing'); }
    if (typeof NS.create !== 'function') { warn('bundle verification: instantiation primitive missing'); }
    if (typeof NS.onReady !== 'function') { warn('bundle verification: ready callback primitive missing'); }
})();
`, ns)
}
