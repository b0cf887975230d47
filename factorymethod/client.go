package factorymethod

// ClientCode runs the creator through its shared logic without knowing which
// concrete creator it is.
func ClientCode(c *Creator) (string, error) {
	out, err := c.SomeOperation()
	if err != nil {
		return "", err
	}
	return "Client: I'm not aware of the creator's class, but it still works.\n" + out, nil
}
