package stream

func defaultWrapper(next *stage) []stageOption {
	defaultConsumer := func(e any) {
		next.consumeOne(e)
	}
	defaultSettler := func(capacity int64, opts ...stageOption) {
		for _, o := range opts {
			o(next.prev)
		}
		next.settler(capacity, opts...)
	}
	defaultCleaner := func() {
		next.cleaner()
	}
	defaultCanceller := func() bool {
		return next.canceller()
	}
	return []stageOption{
		wrapConsumer(defaultConsumer),
		wrapSettler(defaultSettler),
		wrapCleaner(defaultCleaner),
		wrapCanceller(defaultCanceller),
	}
}
