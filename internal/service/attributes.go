package service

import "github.com/MKhiriev/fabric-bridge/models"

// TranslateAttributes copies every field of device whose presence flag is
// set into a fresh attribute record. Unset fields keep their zero value,
// whatever the Optional holds.
func TranslateAttributes(device models.SynchronizedDevice) models.BridgedAttributes {
	var attributes models.BridgedAttributes

	if v, ok := device.UniqueID.Get(); ok {
		attributes.UniqueID = v
	}
	if v, ok := device.VendorName.Get(); ok {
		attributes.VendorName = v
	}
	if v, ok := device.VendorID.Get(); ok {
		attributes.VendorID = v
	}
	if v, ok := device.ProductName.Get(); ok {
		attributes.ProductName = v
	}
	if v, ok := device.ProductID.Get(); ok {
		attributes.ProductID = v
	}
	if v, ok := device.NodeLabel.Get(); ok {
		attributes.NodeLabel = v
	}
	if v, ok := device.HardwareVersion.Get(); ok {
		attributes.HardwareVersion = v
	}
	if v, ok := device.HardwareVersionString.Get(); ok {
		attributes.HardwareVersionString = v
	}
	if v, ok := device.SoftwareVersion.Get(); ok {
		attributes.SoftwareVersion = v
	}
	if v, ok := device.SoftwareVersionString.Get(); ok {
		attributes.SoftwareVersionString = v
	}

	return attributes
}
