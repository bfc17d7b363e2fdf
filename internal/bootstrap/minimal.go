package bootstrap

import "fmt"

// fallbackPrimitives returns implementations of the registration,
// instantiation and ready-callback primitives, installed only when the
// namespace does not already provide them.
func fallbackPrimitives(ns string) string {
	return fmt.Sprintf(`var NS = __global.%[1]s = __global.%[1]s || {};
if (!NS.define) {
    NS.classes = {};
    NS.define = function(name, config, onCreated) {
        var cls = function() {
            if (this.constructor_) { this.constructor_.apply(this, arguments); }
        };
        if (config) {
            for (var key in config) { cls.prototype[key] = config[key]; }
        }
        NS.classes[name] = cls;
        if (typeof onCreated === 'function') { onCreated.call(cls, cls); }
        return cls;
    };
}
if (!NS.create) {
    NS.create = function(name) {
        var cls = NS.classes && NS.classes[name];
        if (!cls) { throw new Error('Unknown class: ' + name); }
        return new cls();
    };
}
if (!NS.onReady) {
    NS.readyQueue = [];
    NS.onReady = function(fn) {
        if (NS.isReady) { fn(); } else { NS.readyQueue.push(fn); }
    };
}
`, ns)
}

// minimalBootstrap is tier (c): the whole core reduced to the bare
// primitives inside their own isolating scope.
func minimalBootstrap(ns string) string {
	return fmt.Sprintf(`// minimal bootstrap
(function(__global) {
%s})(typeof window !== 'undefined' ? window : this);
`, fallbackPrimitives(ns))
}
