package visibility

type nopSubscription struct{}

func (nopSubscription) Unsubscribe() {}
